// Package kmeans implements palette quantisation with Lloyd's algorithm over
// the RGB cube.
//
// An Engine samples k distinct seed colours from an image, then alternates
// between assigning every pixel to its nearest palette entry and moving each
// entry to the mean of its pixels. Entries left without pixels are re-seeded
// from a jittered copy of a used entry, or occasionally from a random pixel.
// Each outer iteration ends with the within-cluster sum of squared distances
// (WCSS); the run stops once two consecutive scores differ by less than the
// configured threshold.
//
// The assign, update and scoring passes are split into row ranges processed
// concurrently. Random draws only happen in sequential phases, so a seeded
// run replays identically for any worker count.
package kmeans
