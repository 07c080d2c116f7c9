package blocks

// Kind of an atomic content block.
// ENUM(header, band, profileGrid, sectionTitle, summary, item)
type Kind int

// Headerish reports whether the block belongs to the document header area.
func (k Kind) Headerish() bool {
	return k == KindHeader || k == KindBand || k == KindProfileGrid
}
