package fulfillment

// Asset is one deliverable in the bonus pack. Keys appear in download URLs
// and inside signed token payloads, so they never change once issued.
type Asset struct {
	Key         string
	Title       string
	FileName    string
	ContentType string
}

// FullPackKey is the pseudo-asset bundling everything into one archive
const FullPackKey = "full-pack"

// BonusAssets is the fixed inventory delivered to every verified pre-order.
var BonusAssets = []Asset{
	{Key: "deleted-chapter", Title: "Deleted Chapter: The First Refusal", FileName: "deleted-chapter.pdf", ContentType: "application/pdf"},
	{Key: "agent-charter-pack", Title: "Agent Charter Pack", FileName: "agent-charter-pack.pdf", ContentType: "application/pdf"},
	{Key: "coi-diagnostic", Title: "COI Diagnostic Workbook", FileName: "coi-diagnostic.pdf", ContentType: "application/pdf"},
	{Key: "signed-bookplate", Title: "Signed Bookplate (Printable)", FileName: "signed-bookplate.pdf", ContentType: "application/pdf"},
	{Key: "authors-notes", Title: "Author's Annotated Notes", FileName: "authors-notes.pdf", ContentType: "application/pdf"},
	{Key: "prompt-library", Title: "Companion Prompt Library", FileName: "prompt-library.pdf", ContentType: "application/pdf"},
	{Key: "audiobook-sampler", Title: "Audiobook Sampler", FileName: "audiobook-sampler.mp3", ContentType: "audio/mpeg"},
}

// FullPack is the single-archive download of all bonus assets.
var FullPack = Asset{
	Key:         FullPackKey,
	Title:       "Complete Bonus Pack",
	FileName:    "ai-born-bonus-pack.zip",
	ContentType: "application/zip",
}

// AssetByKey resolves a download path segment to its asset definition.
func AssetByKey(key string) (Asset, bool) {
	if key == FullPackKey {
		return FullPack, true
	}
	for _, a := range BonusAssets {
		if a.Key == key {
			return a, true
		}
	}
	return Asset{}, false
}

// ObjectKey is the object storage location of an asset's file
func ObjectKey(a Asset) string {
	return "bonus-assets/" + a.FileName
}
