package petstore

import (
	"fmt"
	"sort"
	"strings"
)

// Rendering is deliberately lossy: only the fields a person scanning the
// output cares about survive. Missing fields get fixed fallbacks so the
// same payload always renders the same bytes.

// FormatPetsList renders one line per pet, or a fixed message for none.
func FormatPetsList(pets []Pet) string {
	if len(pets) == 0 {
		return "No pets found."
	}
	lines := make([]string, 0, len(pets))
	for _, pet := range pets {
		lines = append(lines, fmt.Sprintf("• %s (ID: %d) - %s - Status: %s - Tags: %s",
			petName(pet.Name), pet.ID, categoryName(pet.Category), pet.Status, tagList(pet.Tags)))
	}
	return strings.Join(lines, "\n")
}

// FormatPetDetails renders a multi-line block for a single pet.
func FormatPetDetails(pet Pet) string {
	photos := strings.Join(pet.PhotoURLs, ", ")
	if photos == "" {
		photos = "None"
	}
	return fmt.Sprintf("Name: %s\nID: %d\nCategory: %s\nStatus: %s\nTags: %s\nPhotos: %s",
		petName(pet.Name), pet.ID, categoryName(pet.Category), pet.Status, tagList(pet.Tags), photos)
}

// FormatOrderDetails renders a multi-line block for an order.
func FormatOrderDetails(order Order) string {
	shipDate := order.ShipDate
	if shipDate == "" {
		shipDate = "Not set"
	}
	return fmt.Sprintf("Order ID: %d\nPet ID: %d\nQuantity: %d\nStatus: %s\nShip Date: %s\nComplete: %t",
		order.ID, order.PetID, order.Quantity, order.Status, shipDate, order.Complete)
}

// FormatUserDetails renders a multi-line block for a user profile.
func FormatUserDetails(user User) string {
	email := user.Email
	if email == "" {
		email = "Not provided"
	}
	phone := user.Phone
	if phone == "" {
		phone = "Not provided"
	}
	role := user.Role
	if role == "" {
		role = "customer"
	}
	status := 1
	if user.UserStatus != nil {
		status = *user.UserStatus
	}
	return fmt.Sprintf("Username: %s\nName: %s %s\nEmail: %s\nPhone: %s\nRole: %s\nStatus: %d",
		user.Username, user.FirstName, user.LastName, email, phone, role, status)
}

// FormatInventory renders one count line per status, sorted by status so
// the output does not depend on map iteration order.
func FormatInventory(inventory map[string]int) string {
	statuses := make([]string, 0, len(inventory))
	for status := range inventory {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	lines := make([]string, 0, len(statuses))
	for _, status := range statuses {
		lines = append(lines, fmt.Sprintf("%s: %d pets", status, inventory[status]))
	}
	return strings.Join(lines, "\n")
}

func petName(name string) string {
	if name == "" {
		return "Unnamed"
	}
	return name
}

func categoryName(category *Category) string {
	if category == nil || category.Name == "" {
		return "Unknown"
	}
	return category.Name
}

// tagList joins tag names in input order.
func tagList(tags []Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	joined := strings.Join(names, ", ")
	if joined == "" {
		return "None"
	}
	return joined
}
