package authz

import (
	"testing"

	"tracker-grpc/internal/models"
)

var (
	owner    = &Actor{UserId: 1, Username: "alice"}
	stranger = &Actor{UserId: 2, Username: "bob"}
	super    = &Actor{UserId: 3, Username: "jon"}
)

func publicTask() *models.Record {
	return &models.Record{Id: 10, Kind: models.KindTask, OwnerId: 1}
}

func privateTask() *models.Record {
	return &models.Record{Id: 11, Kind: models.KindTask, OwnerId: 1, Private: true}
}

func privateProject() *models.Record {
	return &models.Record{Id: 12, Kind: models.KindProject, OwnerId: 1, Private: true}
}

func TestIsSuperuser(t *testing.T) {
	tests := []struct {
		username  string
		superuser string
		want      bool
	}{
		{"Jon", "Jon", true},
		{"jon", "Jon", true},
		{"JON", "Jon", true},
		{"jonathan", "Jon", false},
		{"bob", "Jon", false},
		{"", "Jon", false},
		{"jon", "", false},
	}

	for _, tt := range tests {
		if got := IsSuperuser(tt.username, tt.superuser); got != tt.want {
			t.Errorf("IsSuperuser(%q, %q) = %v, want %v", tt.username, tt.superuser, got, tt.want)
		}
	}
}

func TestCanView(t *testing.T) {
	if !CanView(publicTask(), 2) {
		t.Error("public record must be visible to anyone")
	}
	if !CanView(publicTask(), 0) {
		t.Error("public record must be visible to anonymous viewers")
	}
	if !CanView(privateTask(), 1) {
		t.Error("private record must be visible to its owner")
	}
	if CanView(privateTask(), 2) {
		t.Error("private record must not be visible to non-owners")
	}
	if CanView(privateTask(), 0) {
		t.Error("private record must not be visible to anonymous viewers")
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name  string
		rec   *models.Record
		actor *Actor
		want  bool
	}{
		{"anonymous on public", publicTask(), nil, false},
		{"owner on public", publicTask(), owner, true},
		{"stranger on public", publicTask(), stranger, true},
		{"owner on private", privateTask(), owner, true},
		{"stranger on private", privateTask(), stranger, false},
		{"superuser on private task", privateTask(), super, true},
		{"superuser on private project", privateProject(), super, false},
		{"stranger on private project", privateProject(), stranger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDelete(tt.rec, tt.actor, DefaultSuperuserName); got != tt.want {
				t.Errorf("CanDelete = %v, want %v", got, tt.want)
			}
			if got := CanSetChecked(tt.rec, tt.actor, DefaultSuperuserName); got != tt.want {
				t.Errorf("CanSetChecked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanSetPrivate(t *testing.T) {
	tests := []struct {
		name  string
		rec   *models.Record
		actor *Actor
		want  bool
	}{
		{"anonymous", publicTask(), nil, false},
		{"owner on public", publicTask(), owner, true},
		{"owner on private", privateTask(), owner, true},
		{"stranger on public", publicTask(), stranger, false},
		{"stranger on private", privateTask(), stranger, false},
		{"superuser on task", publicTask(), super, false},
		{"superuser on private task", privateTask(), super, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSetPrivate(tt.rec, tt.actor); got != tt.want {
				t.Errorf("CanSetPrivate = %v, want %v", got, tt.want)
			}
		})
	}
}
