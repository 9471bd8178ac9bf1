package listing

// Document envolve o corpo renderizado numa página HTML mínima com título.
func Document(title, body string) string {
	return "<!doctype html><html><head><title>" + title + "</title></head><body>" + body + "</body></html>"
}

// IndexTitle monta o título padrão "Index of <path>".
func IndexTitle(path string) string {
	return "Index of " + path
}
