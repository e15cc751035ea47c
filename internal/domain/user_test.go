package domain

import "testing"

func TestNewUser(t *testing.T) {
	validEmail := "participant@example.com"
	validName := "Jordan Rivers"

	user, err := NewUser(validEmail, validName)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.Role != RoleParticipant {
		t.Errorf("Expected default role %s, got %s", RoleParticipant, user.Role)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Empty email
	_, err = NewUser("", validName)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	// Malformed email
	_, err = NewUser("not-an-email", validName)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Empty name
	_, err = NewUser(validEmail, "")
	if err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}
}

func TestUserIsOrganizer(t *testing.T) {
	user, err := NewUser("organizer@example.com", "Casey Morgan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.IsOrganizer() {
		t.Error("Expected participant not to be organizer")
	}

	user.Role = RoleOrganizer
	if !user.IsOrganizer() {
		t.Error("Expected organizer role to report IsOrganizer")
	}
}

func TestUserValidate_InvalidRole(t *testing.T) {
	user, err := NewUser("someone@example.com", "Sam Lee")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	user.Role = Role("admin")
	if err := user.Validate(); err != ErrInvalidRole {
		t.Errorf("Expected error %v, got %v", ErrInvalidRole, err)
	}
}

func TestUserPatch(t *testing.T) {
	if !(UserPatch{}).IsEmpty() {
		t.Error("Expected empty patch to report IsEmpty")
	}

	phone := "+8801700000000"
	patch := UserPatch{Phone: &phone}
	if patch.IsEmpty() {
		t.Error("Expected populated patch not to report IsEmpty")
	}
	if err := patch.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	blank := ""
	if err := (UserPatch{Name: &blank}).Validate(); err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}
}
