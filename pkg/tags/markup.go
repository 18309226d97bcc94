package tags

func metaName(name string) func(string) string {
	return func(value string) string {
		return `<meta name="` + name + `" content="` + value + `">`
	}
}

func metaProperty(property string) func(string) string {
	return func(value string) string {
		return `<meta property="` + property + `" content="` + value + `">`
	}
}

func charsetTag(value string) string {
	return `<meta charset="` + value + `">`
}

func titleTag(value string) string {
	return "<title>" + value + "</title>"
}

func linkTag(rel string) func(string) string {
	return func(href string) string {
		return `<link rel="` + rel + `" href="` + href + `">`
	}
}
