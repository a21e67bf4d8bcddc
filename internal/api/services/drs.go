package services

type AccessURL struct {
	URL     string   `json:"url"`
	Headers []string `json:"headers,omitempty"`
}

type AccessMethod struct {
	Type      string     `json:"type"`
	AccessURL *AccessURL `json:"access_url,omitempty"`
	AccessID  string     `json:"access_id,omitempty"`
	Cloud     string     `json:"cloud,omitempty"`
	Region    string     `json:"region,omitempty"`
}

type Checksum struct {
	Checksum string `json:"checksum"`
	Type     string `json:"type"`
}

// DRSObject is a GA4GH DRS v1 object.
type DRSObject struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	SelfURI       string         `json:"self_uri,omitempty"`
	Size          int64          `json:"size"`
	MimeType      string         `json:"mime_type,omitempty"`
	Checksums     []Checksum     `json:"checksums"`
	AccessMethods []AccessMethod `json:"access_methods"`
}

// HTTPSAccess returns the first https access method.
func (o *DRSObject) HTTPSAccess() (AccessMethod, bool) {
	for _, m := range o.AccessMethods {
		if m.Type == "https" {
			return m, true
		}
	}
	return AccessMethod{}, false
}
