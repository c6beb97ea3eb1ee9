// SPDX-License-Identifier: Apache-2.0

package contact

// Contact is the structured record produced by one extraction run.
// Fields that could not be determined stay empty — the consumer (an edit
// screen or an address-book writer) treats every field as overwritable,
// so absence is never modeled as an error.
type Contact struct {
	Name        string `json:"name" yaml:"name"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	Email       string `json:"email" yaml:"email"`
	Address     string `json:"address" yaml:"address"`

	// ImageRef is an opaque handle to the card photo. The extraction core
	// only passes it through.
	ImageRef string `json:"image_ref,omitempty" yaml:"image_ref,omitempty"`
}

// IsValid reports whether the contact is usable for address-book writing.
// Downstream persistence requires at least a name and a phone number;
// the extraction pipeline itself never enforces this.
func (c *Contact) IsValid() bool {
	return c.Name != "" && c.PhoneNumber != ""
}

// IsEmpty reports whether no field was filled at all.
func (c *Contact) IsEmpty() bool {
	return c.Name == "" && c.PhoneNumber == "" && c.Company == "" &&
		c.Position == "" && c.Email == "" && c.Address == ""
}
