// Package preview prepares the image a guides node displays.
//
// The executing side of a workflow never draws guides. It shrinks the input
// image to the node's resolution limit, encodes it as a base64 PNG and emits a
// [Message] under [EventName]. The display side decodes the payload with
// [DecodePayload] and hands it to the node adapter, which lays guides over it.
//
// Source images may be PNG, JPEG, GIF, BMP, TIFF or WebP; see [Decode].
package preview
