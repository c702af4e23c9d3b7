package structure

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is the comment emitted under every derived section.
const Placeholder = "<!-- Add your content here -->"

// structureMarkers open the structure section of a schema.
var structureMarkers = []string{"Structure Specification", "Recommended Structure"}

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// DeriveTemplate builds a skeleton document from the structure section
// of a schema. Each level-3 heading inside the section becomes a level-2
// section with a placeholder; the section ends at the next level-2
// heading that does not mention "Structure".
func DeriveTemplate(kindLabel, schemaText string) string {
	var body []string
	inSection := false

	for _, line := range strings.Split(schemaText, "\n") {
		trimmed := strings.TrimSpace(line)

		if isStructureMarker(trimmed) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		switch headingLevel(trimmed) {
		case 2:
			if !strings.Contains(trimmed, "Structure") {
				return assemble(kindLabel, body)
			}
		case 3:
			_, title, _ := parseHeading(trimmed)
			title = ordinalPrefix.ReplaceAllString(title, "")
			body = append(body, "## "+title, "", Placeholder, "")
		}
	}

	return assemble(kindLabel, body)
}

// Title renders a schema kind label as a document title:
// first letter upper-cased, underscores as spaces.
func Title(kindLabel string) string {
	label := strings.ReplaceAll(kindLabel, "_", " ")
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + label[size:]
}

func isStructureMarker(line string) bool {
	for _, m := range structureMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func assemble(kindLabel string, body []string) string {
	return "# " + Title(kindLabel) + "\n\n" + strings.Join(body, "\n")
}
