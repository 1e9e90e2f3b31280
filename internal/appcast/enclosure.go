package appcast

import "fmt"

// DownloadURL is where the release DMG is published. Sparkle feeds pin the
// exact asset URL, so it is not derived from the input path.
const DownloadURL = "https://github.com/sturdy-barnacle/md-editor/releases/download/v1.0.2/Tibok-1.0.2.dmg"

// EnclosureType is the MIME type advertised for DMG enclosures.
const EnclosureType = "application/octet-stream"

// Enclosure models the appcast.xml <enclosure> element for a signed artifact.
type Enclosure struct {
	URL         string
	EdSignature string
	Length      int64
	Type        string
}

// NewEnclosure builds an enclosure for a signed artifact using the fixed
// download URL and MIME type.
func NewEnclosure(edSignature string, length int64) Enclosure {
	return Enclosure{
		URL:         DownloadURL,
		EdSignature: edSignature,
		Length:      length,
		Type:        EnclosureType,
	}
}

// Render produces the XML fragment to paste into appcast.xml, indented to sit
// inside an <item> element.
func (e Enclosure) Render() string {
	return fmt.Sprintf(`    <enclosure
        url="%s"
        sparkle:edSignature="%s"
        length="%d"
        type="%s"
    />`, e.URL, e.EdSignature, e.Length, e.Type)
}
