package errors

// Convenience constructors for the error kinds surfaced by the core.

func IOReadError(err error, path string) *SiteError {
	return Wrap(err, KindIORead, "failed to read file").
		WithContext("path", path)
}

func IOWriteError(err error, path string) *SiteError {
	return Wrap(err, KindIOWrite, "failed to write file").
		WithContext("path", path)
}

func MalformedProjectData(err error, path string) *SiteError {
	return Wrap(err, KindMalformedProject, "project file does not match the expected structure").
		WithContext("path", path)
}

func MalformedPageData(reason string) *SiteError {
	return New(KindMalformedPage, "page entry is missing required fields").
		WithContext("reason", reason)
}

func TemplateNotFound(err error, location string) *SiteError {
	return Wrap(err, KindTemplateNotFound, "page template not found").
		WithContext("location", location)
}

func RenderError(err error, filename string) *SiteError {
	return Wrap(err, KindRender, "template evaluation failed").
		WithContext("filename", filename)
}

func CannotRemoveHomePage() *SiteError {
	return New(KindHomePageProtected, "the home page (index.html) cannot be removed")
}

func PageNotFound(filename string) *SiteError {
	return New(KindPageNotFound, "no page with this filename").
		WithContext("filename", filename)
}

func DuplicateFilename(filename string) *SiteError {
	return New(KindDuplicateFilename, "a page with this filename already exists").
		WithContext("filename", filename)
}

func ImportError(err error, source string) *SiteError {
	return Wrap(err, KindImport, "import failed").
		WithContext("source", source)
}
