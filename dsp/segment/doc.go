// Package segment frames signals into overlapping windowed blocks and
// reconstructs them by overlap-add.
//
// A Window pairs an analysis window with an optional synthesis window at a
// fixed hop. Adapt builds one from a raw window and a Scheme, certifying the
// pair with the COLA check of package cola and normalizing it to unit
// overlap-add gain:
//
//   - OverlapAdd: flat analysis, normalized window at synthesis.
//   - WeightedOverlapAdd: square root of the normalized window on both sides.
//   - AnalysisOnly: raw window at analysis, no reconstruction.
//
// With edge correction (the default) the first and last frames carry
// boundary envelopes that fold in the contributions of the frames missing
// beyond each edge, so Unsegment(Segment(x)) reproduces x over the whole
// reconstructed range rather than only where frames fully overlap.
//
// A Segmenter runs the framing and overlap-add loops once, generically, on a
// backend.Backend. Inputs are rank 1 (one signal) or rank 2 (a batch);
// batch rows are independent and can be processed concurrently.
package segment
