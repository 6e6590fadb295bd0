package config

// Mailmap files that canonicalize author identities in git log output.
type MailmapFiles struct {
	RepoMailmapPath   string
	GlobalMailmapPath string
}

func (mf MailmapFiles) HasMailmap() bool {
	return len(mf.RepoMailmapPath) > 0 || len(mf.GlobalMailmapPath) > 0
}
