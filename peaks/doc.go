// Package peaks discovers the symbol-length clusters of a raw RFID
// capture from the distribution of its pulse and low lengths.
//
// Physical pulse lengths cluster tightly around a small number of true
// clock-multiple lengths, smeared by jitter. The histogram here is exact,
// one bin per integer length, preserving the resolution needed to tell
// adjacent clock multiples apart; Find absorbs the jitter with height and
// prominence thresholds and resolves cluster overlap with an Otsu
// threshold over the contested slice, so no length is claimed by two
// clusters at once.
package peaks
