package meraki

// Organization is an organization visible to the API key.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Network is a network within an organization.
type Network struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	Name           string   `json:"name"`
	ProductTypes   []string `json:"productTypes,omitempty"`
	TimeZone       string   `json:"timeZone,omitempty"`
}

// Device is a device claimed into a network. An empty Address means the
// physical address has not been set.
type Device struct {
	Serial    string   `json:"serial"`
	Name      string   `json:"name,omitempty"`
	Model     string   `json:"model,omitempty"`
	MAC       string   `json:"mac,omitempty"`
	NetworkID string   `json:"networkId,omitempty"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Firmware  string   `json:"firmware,omitempty"`
}

// deviceUpdate is the PUT /devices/{serial} body.
type deviceUpdate struct {
	Address *string `json:"address,omitempty"`
}
