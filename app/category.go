package app

import "strings"

// fileCategories maps a category name to the extensions that belong to it.
var fileCategories = map[string][]string{
	"images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg"},
	"documents":     {".pdf", ".doc", ".docx", ".txt", ".md", ".rtf", ".odt"},
	"spreadsheets":  {".xls", ".xlsx", ".csv", ".ods"},
	"presentations": {".ppt", ".pptx", ".odp"},
	"audio":         {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
	"video":         {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm"},
	"archives":      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
	"code":          {".py", ".js", ".go", ".html", ".css", ".cpp", ".java", ".php", ".rb"},
	"data":          {".json", ".xml", ".yaml", ".sql", ".db", ".sqlite"},
}

var extToCategory = func() map[string]string {
	m := make(map[string]string)
	for category, exts := range fileCategories {
		for _, ext := range exts {
			m[ext] = category
		}
	}
	return m
}()

// Categorize returns the coarse category for a file extension, or "other"
// when the extension is unknown.
func Categorize(ext string) string {
	if category, ok := extToCategory[strings.ToLower(ext)]; ok {
		return category
	}
	return "other"
}
