package types

// FontRecord is one raw font as reported by the discovery layer. No
// ordering or uniqueness is guaranteed at this point; the catalog
// establishes both during build.
type FontRecord struct {
	Name           string
	FamilyMetadata string
	FilePath       string
}

// CatalogEntry is one classified font held by the catalog. Entries are
// created once during build and never mutated afterwards.
type CatalogEntry struct {
	Name       string
	FilePath   string
	Categories CategorySet
}
