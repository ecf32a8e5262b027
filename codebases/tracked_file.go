package codebases

// TrackedFile is a project file with an append-only version history.
// The current contents are always the last appended version.
type TrackedFile struct {
	path     string
	versions []string
}

func newTrackedFile(path string, contents string) *TrackedFile {
	return &TrackedFile{
		path:     path,
		versions: []string{contents},
	}
}

func (f *TrackedFile) Path() string {
	return f.path
}

func (f *TrackedFile) Contents() string {
	return f.versions[len(f.versions)-1]
}

func (f *TrackedFile) NumVersions() int {
	return len(f.versions)
}

// Version returns the contents at a historical index, 0 being the
// ingested version.
func (f *TrackedFile) Version(i int) string {
	return f.versions[i]
}

func (f *TrackedFile) append(contents string) {
	f.versions = append(f.versions, contents)
}
