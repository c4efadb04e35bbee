package petstore

// Category groups pets in the store catalog.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Tag is a free-form label attached to a pet.
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Pet mirrors the Petstore API pet shape. Only the fields the formatter
// reads are declared; everything else is owned by the remote service.
type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags"`
	Status    string    `json:"status"`
}

// Order is a store order for a single pet.
type Order struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"petId"`
	Quantity int    `json:"quantity"`
	ShipDate string `json:"shipDate,omitempty"`
	Status   string `json:"status"`
	Complete bool   `json:"complete"`
}

// newOrder is the request body for placing an order. ShipDate carries
// omitempty so an unset date leaves the key out of the body entirely.
type newOrder struct {
	PetID    int64  `json:"petId"`
	Quantity int    `json:"quantity"`
	ShipDate string `json:"shipDate,omitempty"`
	Status   string `json:"status"`
	Complete bool   `json:"complete"`
}

// User is a Petstore account profile. UserStatus is a pointer so the
// formatter can tell an omitted field from an explicit zero.
type User struct {
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	UserStatus *int   `json:"userStatus"`
}

// NewUser is the request body for account creation. Optional fields are
// pointers without omitempty: unset values pass through as JSON null, the
// way the API expects them.
type NewUser struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// NewPet is the request body for adding a pet to the catalog.
type NewPet struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Status    string   `json:"status"`
	PhotoURLs []string `json:"photoUrls"`
	Tags      []Tag    `json:"tags"`
}

// LoginResult carries the token returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
}
