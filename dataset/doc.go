// Package dataset defines the labeled feature vectors consumed by the
// classifier and the comma-separated text format they are loaded from and
// written to. One instance per line: numeric feature fields followed by a
// trailing label field. Files ending in .gz or .zst are compressed
// transparently.
package dataset
