// Package sample evaluates user functions over the pixels of an X axis.
//
// Evaluation is isolated: a function that panics at a point yields NaN
// there, which the renderer treats as a gap in the graph. Samples are
// cached per graph and axis state, so redrawing an unchanged view does not
// call the function again.
package sample
