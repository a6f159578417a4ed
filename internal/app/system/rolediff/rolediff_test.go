package rolediff

import (
	"reflect"
	"testing"
)

func TestAllowedRoles(t *testing.T) {
	cases := []struct {
		name  string
		actor []string
		want  []string
	}{
		{"owner", []string{"owner"}, []string{"admin", "seller", "tester"}},
		{"admin", []string{"admin"}, []string{"seller"}},
		{"owner wins over admin", []string{"admin", "owner"}, []string{"admin", "seller", "tester"}},
		{"seller manages nothing", []string{"seller"}, nil},
		{"case insensitive", []string{"Owner"}, []string{"admin", "seller", "tester"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AllowedRoles(tc.actor)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("AllowedRoles(%v) = %v, want %v", tc.actor, got, tc.want)
			}
		})
	}
}

func TestManagedCurrent(t *testing.T) {
	allowed := AllowedRoles([]string{"admin"})
	got := ManagedCurrent([]string{"admin", "seller"}, allowed)
	if !reflect.DeepEqual(got, []string{"seller"}) {
		t.Fatalf("ManagedCurrent = %v, want [seller]", got)
	}
}

func TestManagedCurrent_OwnerActor(t *testing.T) {
	allowed := AllowedRoles([]string{"owner"})
	got := ManagedCurrent([]string{"tester", "owner", "admin"}, allowed)
	if !reflect.DeepEqual(got, []string{"admin", "tester"}) {
		t.Fatalf("ManagedCurrent = %v, want [admin tester]", got)
	}
}

func TestDirty(t *testing.T) {
	if Dirty([]string{"seller", "admin"}, []string{"admin", "seller"}) {
		t.Fatal("same set in different order must not be dirty")
	}
	if !Dirty([]string{"admin"}, []string{"admin", "seller"}) {
		t.Fatal("removed role must be dirty")
	}
	if Dirty(nil, nil) {
		t.Fatal("empty sets must not be dirty")
	}
}

func TestHoldsOwner(t *testing.T) {
	if !HoldsOwner([]string{"Seller", "OWNER"}) {
		t.Fatal("owner role must be detected case-insensitively")
	}
	if HoldsOwner([]string{"admin", "seller"}) {
		t.Fatal("no owner role present")
	}
}

func TestWithinScope(t *testing.T) {
	allowed := AllowedRoles([]string{"admin"})
	if !WithinScope([]string{"seller"}, allowed) {
		t.Fatal("seller is within an admin's scope")
	}
	if WithinScope([]string{"admin"}, allowed) {
		t.Fatal("admin is outside an admin's scope")
	}
	if !WithinScope(nil, allowed) {
		t.Fatal("empty draft is always in scope")
	}
}

func TestEditable(t *testing.T) {
	allowed := []string{"seller"}
	if Editable("u1", "u1", []string{"seller"}, allowed) {
		t.Fatal("own row must not be editable")
	}
	if Editable("u1", "u2", []string{"owner"}, allowed) {
		t.Fatal("owner rows must not be editable")
	}
	if Editable("u1", "u2", []string{"seller"}, nil) {
		t.Fatal("actor with no allow-list must not edit")
	}
	if !Editable("u1", "u2", []string{"seller", "tester"}, allowed) {
		t.Fatal("ordinary row should be editable")
	}
}
