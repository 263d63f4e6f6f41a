package linestats

import (
	"strings"
)

// Bucket a changed file is counted under, inferred from its name.
type FileType string

const (
	Bash     FileType = "bash"
	Conf     FileType = "conf"
	CSS      FileType = "css"
	CSV      FileType = "csv"
	Flash    FileType = "flash"
	Images   FileType = "images"
	Htaccess FileType = "htaccess"
	HTML     FileType = "html"
	Java     FileType = "java"
	JS       FileType = "js"
	JSON     FileType = "json"
	Markdown FileType = "markdown"
	Mustache FileType = "mustache"
	PHP      FileType = "php"
	Python   FileType = "python"
	Ruby     FileType = "ruby"
	Scala    FileType = "scala"
	Smarty   FileType = "smarty"
	SQL      FileType = "sql"
	Text     FileType = "text"
	TSV      FileType = "tsv"
	XML      FileType = "xml"
	YAML     FileType = "yaml"

	// Catch-all for paths no suffix matched.
	Other FileType = "other"
)

type TypeSuffixes struct {
	Type     FileType
	Suffixes []string
}

// Table order is match priority: the first type with a matching suffix wins.
var SuffixTable = []TypeSuffixes{
	{Bash, []string{".sh"}},
	{Conf, []string{".conf"}},
	{CSS, []string{".css", ".scss", ".less"}},
	{CSV, []string{".csv"}},
	{Flash, []string{".swf"}},
	{Images, []string{".bmp", ".gif", ".ico", ".jpg", ".png", ".svg"}},
	{Htaccess, []string{".htaccess"}},
	{HTML, []string{".htm", ".html"}},
	{Java, []string{".java"}},
	{JS, []string{".js"}},
	{JSON, []string{".json"}},
	{Markdown, []string{".md"}},
	{Mustache, []string{".mustache"}},
	{PHP, []string{".php"}},
	{Python, []string{".py"}},
	{Ruby, []string{".erb", ".rb"}},
	{Scala, []string{".scala"}},
	{Smarty, []string{".tpl"}},
	{SQL, []string{".sql"}},
	{Text, []string{".txt"}},
	{TSV, []string{".tsv"}},
	{XML, []string{".xml"}},
	{YAML, []string{".yaml", ".yml"}},
}

// Result of classifying a path.
//
// HasExtension is only true when the path fell through to Other and its final
// segment had a dot in it. Extension may still be empty, e.g. for "notes.".
type Classification struct {
	Type         FileType
	Extension    string
	HasExtension bool
}

// Classify a path against SuffixTable.
func Classify(path string) Classification {
	return classifyWith(SuffixTable, path)
}

func classifyWith(table []TypeSuffixes, path string) Classification {
	trimmed := strings.TrimSpace(path)

	for _, entry := range table {
		for _, suffix := range entry.Suffixes {
			if hasSuffixFold(trimmed, suffix) {
				return Classification{Type: entry.Type}
			}
		}
	}

	ext, ok := unknownExtension(trimmed)
	return Classification{
		Type:         Other,
		Extension:    ext,
		HasExtension: ok,
	}
}

// Case-insensitive literal suffix match. The empty suffix matches anything.
func hasSuffixFold(s string, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}

// Returns whatever follows the last "." in the final path segment. The second
// return value is false if that segment has no "." at all.
func unknownExtension(path string) (string, bool) {
	parts := strings.Split(path, "/")
	last := parts[len(parts)-1]

	i := strings.LastIndex(last, ".")
	if i < 0 {
		return "", false
	}

	return last[i+1:], true
}
