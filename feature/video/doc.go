// Package video implements the video platform feed.
//
// Video slides carry optional tags and album_id filters in their content.
// On a fixed schedule the service queries the platform's photo list API
// with those filters and writes the matching photo ids into the slide's
// jsonData field. Slides are never created or deleted.
package video
