// Package slideshow implements the slideshow feed.
//
// Slideshow slides name a folder of images (content.imageFolder) in an
// S3-compatible bucket. On a fixed schedule the service lists the folder,
// builds public URLs for its objects and writes them into the slide's
// jsonData field. Emptied folders empty the slide, so removed images
// disappear from the screens.
package slideshow
