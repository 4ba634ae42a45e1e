package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

// ShowProfile fetches and prints the current user's profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profiles.Fetch(ctx)
	if err != nil {
		fmt.Println("Could not load profile:", err.Error())
		return err
	}

	printProfile(p)
	return nil
}

// EditProfile shows the current profile field by field; pressing Enter
// keeps a value. The edited record is sent as one full update, and the
// copy the server answers with is what gets shown, not the local draft.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.profiles.Fetch(ctx)
	if err != nil {
		fmt.Println("Could not load profile:", err.Error())
		return err
	}

	draft := *current

	fields := []struct {
		label string
		value *string
	}{
		{"First name", &draft.FirstName},
		{"Last name", &draft.LastName},
		{"Alias", &draft.Alias},
		{"Birth date (yyyy-mm-dd)", &draft.BirthDate},
		{"Bio", &draft.Bio},
		{"Avatar URL", &draft.AvatarURL},
	}

	for _, f := range fields {
		text, err := GetTextWithDefault(a.reader, f.label, *f.value, os.Stdout)
		if err != nil {
			return err
		}
		*f.value = text
	}

	updated, err := a.profiles.Update(ctx, &draft)
	if err != nil {
		fmt.Println("Could not save profile:", err.Error())
		return err
	}

	fmt.Println("Profile saved")
	printProfile(updated)
	return nil
}

func printProfile(p *models.Profile) {
	fmt.Println("--- Profile ---")
	fmt.Println("Email:     ", p.Email)
	fmt.Println("First name:", p.FirstName)
	fmt.Println("Last name: ", p.LastName)
	fmt.Println("Alias:     ", p.Alias)
	fmt.Println("Birth date:", p.BirthDate)
	fmt.Println("Bio:       ", p.Bio)
	fmt.Println("Avatar URL:", p.AvatarURL)
}
