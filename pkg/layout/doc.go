// Package layout converts symbolic sizes into pixel rectangles.
//
// Sizes are expressed as a [Scale]: a fixed number of pixels, a percentage of
// the parent dimension, or a weight that competes with sibling weights for the
// space left over once every fixed consumer has been served. The same
// distribution rule ([Distribute]) sizes padding edges around content and
// siblings inside a container, so a weighted padding edge and a weighted
// sibling behave identically.
//
// Two container solvers are provided. [Flexible] places children one after the
// other along a main axis. [Absolute] positions every child independently, with
// a separate weight pool per property. [Calculate] walks a [Layoutable] tree and
// stores the solved [Layout] on each node.
package layout
