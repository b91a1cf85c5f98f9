package format

import "github.com/dustin/go-humanize"

// FormatCount groups the digits of n with commas.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatBytes renders a byte count with a binary unit suffix (KiB, MiB...).
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}
