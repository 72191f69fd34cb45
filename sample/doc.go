// Package sample provides a growable float64 buffer for collecting a
// data set before analysis, plus helpers for reading values from text
// sources. A Buffer is append-only while it is being filled; Sort
// finalizes it in ascending order for the order statistics in
// stats/descriptive.
package sample
