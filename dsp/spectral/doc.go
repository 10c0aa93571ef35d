// Package spectral layers block transforms on top of package segment.
//
// A Spectrogram frames a signal with a segment.Segmenter and applies the
// backend's real transform to every frame, yielding segment_size/2+1 bins
// per frame. Inverse undoes the transform and overlap-adds the frames.
//
// Spectra can be split into magnitude and phase, and phase can be expressed
// as a baseband phase difference (BPD): the frame-to-frame phase advance with
// the advance expected from each bin's centre frequency removed.
//
// Errors are the sentinels of package segment.
package spectral
