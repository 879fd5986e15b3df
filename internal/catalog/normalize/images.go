package normalize

import "strings"

// imageList flattens the shapes supplier feeds use for pictures into an
// ordered list of URL strings: a single URL, a delimiter-joined string, a
// list of URLs, or a list of {url|src} objects. Empty entries are dropped;
// order is preserved and duplicates are kept (dedup is the caller's call).
func imageList(v interface{}, delim string) []string {
	images := make([]string, 0, 4)

	switch src := v.(type) {
	case string:
		images = appendImageString(images, src, delim)
	case []string:
		for _, s := range src {
			images = appendImageString(images, s, delim)
		}
	case []interface{}:
		for _, item := range src {
			switch entry := item.(type) {
			case string:
				images = appendImageString(images, entry, delim)
			case map[string]interface{}:
				if url := AsRaw(entry).String("url", "src"); url != "" {
					images = append(images, url)
				}
			}
		}
	}

	return images
}

func appendImageString(images []string, s, delim string) []string {
	if delim != "" && strings.Contains(s, delim) {
		for _, part := range strings.Split(s, delim) {
			if part = strings.TrimSpace(part); part != "" {
				images = append(images, part)
			}
		}
		return images
	}
	if s = strings.TrimSpace(s); s != "" {
		images = append(images, s)
	}
	return images
}
