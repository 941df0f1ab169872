// The boxpack subpackage allocates rectangular regions from a fixed
// size canvas using a binary tree of guillotine cuts.
//
// Each insertion looks for the first free leaf (depth-first) that can
// hold the requested size plus the border on both sides. If the leaf
// is bigger than needed, it's cut in two along the axis with the most
// slack, the requested part is explored again and the remainder stays
// free. The algorithm is the classic lightmap packer described in
// http://blackpawn.com/texts/lightmaps/.
//
// Freed leaves are not merged back with their siblings. This keeps the
// allocation order predictable, but long sequences of insert/free pairs
// with different sizes will fragment the canvas. [Pack.Clear]() is the
// only way to get a pristine tree back.
package boxpack
