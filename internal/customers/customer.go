package customers

// ResourceRef is an opaque hypermedia self-link. The remote service exposes no
// numeric customer id; the resource URL is the customer's identity, and update,
// delete and new-training operations all address the customer through it.
type ResourceRef string

func (r ResourceRef) IsZero() bool {
	return r == ""
}

func (r ResourceRef) String() string {
	return string(r)
}

type Customer struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	Streetaddress string `json:"streetaddress"`
	Postcode      string `json:"postcode"`
	City          string `json:"city"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	// Ref is lifted out of the _links.self.href of the read response.
	// A customer without it is read-only.
	Ref ResourceRef `json:"-"`
}

func (c Customer) FullName() string {
	return c.Firstname + " " + c.Lastname
}
