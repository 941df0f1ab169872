// The atlas subpackage packs small images into a single square texture.
//
// An [Atlas] owns a CPU pixel buffer, a [boxpack.Pack] over the same
// canvas and a [Texture] created by a [Backend]. Added images are
// copied into the buffer at the position chosen by the packer, the
// touched region is uploaded to the texture, and an [Item] with the
// normalized texture coordinates of the image is returned.
//
// Without the gtxt build tag, the default backend creates Ebitengine
// images. With gtxt, textures are plain [image.Image] values, which is
// what the tests use too.
//
// The atlas doesn't decide what to evict when it's full. That's the job
// of whoever owns the atlas (see the glyph subpackage for an example
// using an LRU cache).
package atlas
