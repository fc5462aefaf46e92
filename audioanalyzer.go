package kord

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// FrequencyBin is a (frequency, magnitude) sample of a spectrum.
type FrequencyBin struct {
	Frequency float64
	Magnitude float64
}

// noteMagnitude pairs a note with an accumulated peak magnitude.
type noteMagnitude struct {
	Note      Note
	Magnitude float64
}

// AnalyzeAudio runs the PCM-to-notes pipeline on pcm, a real-valued sample
// buffer spanning durationSeconds seconds, and returns the notes it detects
// in magnitude-descending order.
func AnalyzeAudio(pcm []float32, durationSeconds uint8, cfg AnalyzerConfig) ([]Note, error) {
	if durationSeconds < 1 {
		return nil, &InvalidAudioError{Reason: "listening length in seconds must be at least 1"}
	}
	for _, s := range pcm {
		if math.IsNaN(float64(s)) {
			return nil, &InvalidAudioError{Reason: "audio data contains NaN samples"}
		}
	}
	if len(pcm)%int(durationSeconds) != 0 {
		return nil, &InvalidAudioError{Reason: fmt.Sprintf("fft size %d does not divide evenly by duration %d", len(pcm), durationSeconds)}
	}

	freqSpace := FrequencySpace(pcm, int(durationSeconds))
	smoothed := SmoothedFrequencySpace(freqSpace, int(durationSeconds))
	return NotesFromSmoothedFrequencySpace(smoothed, cfg), nil
}

// FrequencySpace computes the forward FFT of pcm and returns (f_k, |X_k|)
// pairs, where f_k = k / durationSeconds.
func FrequencySpace(pcm []float32, durationSeconds int) []FrequencyBin {
	samples := make([]float64, len(pcm))
	for i, s := range pcm {
		samples[i] = float64(s)
	}

	spectrum := fft.FFTReal(samples)
	bins := make([]FrequencyBin, len(spectrum))
	for k, c := range spectrum {
		bins[k] = FrequencyBin{
			Frequency: float64(k) / float64(durationSeconds),
			Magnitude: cmplx.Abs(c),
		}
	}
	return bins
}

// SmoothedFrequencySpace time-normalizes freqSpace to 1Hz resolution by
// averaging successive blocks of durationSeconds pairs.
func SmoothedFrequencySpace(freqSpace []FrequencyBin, durationSeconds int) []FrequencyBin {
	size := durationSeconds
	smoothed := make([]FrequencyBin, 0, len(freqSpace)/size)

	for k := 0; k+size <= len(freqSpace); k += size {
		var sumFreq, sumMag float64
		for _, b := range freqSpace[k : k+size] {
			sumFreq += b.Frequency
			sumMag += b.Magnitude
		}
		smoothed = append(smoothed, FrequencyBin{
			Frequency: sumFreq / float64(size),
			Magnitude: sumMag / float64(size),
		})
	}
	return smoothed
}

// NotesFromSmoothedFrequencySpace runs the peak-extraction, noise-gate,
// binning, and harmonic-folding stages over an already time-normalized
// spectrum.
func NotesFromSmoothedFrequencySpace(smoothed []FrequencyBin, cfg AnalyzerConfig) []Note {
	peaks := peakSpace(smoothed, cfg)
	candidates := likelyNotes(peaks, cfg)
	return reduceByHarmonicSeries(candidates, cfg)
}

// peakSpace restricts smoothed to [cfg.MinBinHz, cfg.MaxBinHz), retains only
// the maximum-magnitude bin within each frequency-proportional window, and
// zeroes any bin whose 3-bin derivative is small relative to its magnitude.
func peakSpace(smoothed []FrequencyBin, cfg AnalyzerConfig) []FrequencyBin {
	minIndex := cfg.MinBinHz
	maxIndex := cfg.MaxBinHz
	if maxIndex > len(smoothed) {
		maxIndex = len(smoothed)
	}
	if minIndex >= maxIndex {
		return nil
	}

	peaks := append([]FrequencyBin(nil), smoothed...)

	lastK := minIndex
	k := minIndex
	for k < maxIndex {
		windowSize := int(smoothed[k].Frequency / cfg.PeakWindowDivisor)

		maxInWindow := 0.0
		for i := k; i < k+windowSize && i < len(smoothed); i++ {
			if smoothed[i].Magnitude > maxInWindow {
				maxInWindow = smoothed[i].Magnitude
			}
		}

		next := 0
		for j := k; j < k+windowSize && j < len(smoothed); j++ {
			if smoothed[j].Magnitude == maxInWindow {
				next = j
			} else {
				peaks[j].Magnitude = 0
			}
		}

		k = next
		if lastK == k {
			k++
		}
		lastK = k
	}

	window := cfg.DerivativeWindow
	for k := minIndex; k < maxIndex; k++ {
		if k < window || k+window >= len(smoothed) {
			continue
		}
		rightDeriv := math.Abs((smoothed[k+window].Magnitude - smoothed[k].Magnitude) / float64(window))
		leftDeriv := math.Abs((smoothed[k].Magnitude - smoothed[k-window].Magnitude) / float64(window))
		avgDeriv := (rightDeriv + leftDeriv) / 2

		if avgDeriv/peaks[k].Magnitude < cfg.NoiseGateRatio {
			peaks[k].Magnitude = 0
		}
	}

	return peaks[minIndex:maxIndex]
}

// likelyNotes takes the top cfg.NoteCount surviving peaks (by magnitude,
// above cfg.MagnitudeFloor) and bins each onto its nearest note, accumulating
// magnitude for notes that share a bin.
func likelyNotes(peaks []FrequencyBin, cfg AnalyzerConfig) []noteMagnitude {
	filtered := make([]FrequencyBin, 0, len(peaks))
	for _, b := range peaks {
		if b.Magnitude > cfg.MagnitudeFloor {
			filtered = append(filtered, b)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Magnitude > filtered[j].Magnitude })
	if len(filtered) > cfg.NoteCount {
		filtered = filtered[:cfg.NoteCount]
	}

	magnitudeByNote := make(map[Note]float64, len(filtered))
	var order []Note
	for _, b := range filtered {
		note := ClosestNote(b.Frequency)
		if _, ok := magnitudeByNote[note]; !ok {
			order = append(order, note)
		}
		magnitudeByNote[note] += b.Magnitude
	}

	out := make([]noteMagnitude, len(order))
	for i, note := range order {
		out[i] = noteMagnitude{Note: note, Magnitude: magnitudeByNote[note]}
	}
	return out
}

// reduceByHarmonicSeries merges each note's magnitude into the lower note
// whose primary harmonic series it falls on, then drops whatever remains
// below max/cfg.HarmonicFloorRatio.
func reduceByHarmonicSeries(notes []noteMagnitude, cfg AnalyzerConfig) []Note {
	working := append([]noteMagnitude(nil), notes...)
	sort.Slice(working, func(i, j int) bool { return working[i].Note.Frequency() < working[j].Note.Frequency() })

	for k := 0; k < len(working); k++ {
		harmonics := working[k].Note.PrimaryHarmonicSeries()

		j := k + 1
		for j < len(working) {
			merged := false
			for _, h := range harmonics {
				if h.Frequency() == working[j].Note.Frequency() {
					working[k].Magnitude += working[j].Magnitude
					working = append(working[:j], working[j+1:]...)
					merged = true
					break
				}
			}
			if !merged {
				j++
			}
		}
	}

	if len(working) == 0 {
		return nil
	}

	sort.SliceStable(working, func(i, j int) bool { return working[i].Magnitude > working[j].Magnitude })

	cutoff := working[0].Magnitude / cfg.HarmonicFloorRatio
	out := make([]Note, 0, len(working))
	for _, nm := range working {
		if nm.Magnitude > cutoff {
			out = append(out, nm.Note)
		}
	}
	return out
}

