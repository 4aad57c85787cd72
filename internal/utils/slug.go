package utils

import "github.com/gosimple/slug"

// Slugify: детерминированное преобразование заголовка в slug: "My Title" -> "my-title".
func Slugify(title string) string {
	return slug.Make(title)
}
