package server

import (
	"encoding/json"
	"testing"
)

// The update payload must keep three shapes apart: no roleIds key, an empty
// array, and a populated array.
func TestUpdateUserRequestRoleIDsShapes(t *testing.T) {
	var omitted UpdateUserRequest
	if err := json.Unmarshal([]byte(`{"username":"a","realName":"b"}`), &omitted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if omitted.RoleIDs != nil {
		t.Errorf("omitted roleIds must decode to nil, got %v", *omitted.RoleIDs)
	}

	var empty UpdateUserRequest
	if err := json.Unmarshal([]byte(`{"username":"a","roleIds":[]}`), &empty); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if empty.RoleIDs == nil {
		t.Fatal("explicit empty roleIds must decode to a non-nil slice")
	}
	if len(*empty.RoleIDs) != 0 {
		t.Errorf("expected empty slice, got %v", *empty.RoleIDs)
	}

	var populated UpdateUserRequest
	if err := json.Unmarshal([]byte(`{"roleIds":[3,1]}`), &populated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if populated.RoleIDs == nil || len(*populated.RoleIDs) != 2 {
		t.Fatalf("expected two role ids, got %v", populated.RoleIDs)
	}
	if (*populated.RoleIDs)[0] != 3 || (*populated.RoleIDs)[1] != 1 {
		t.Errorf("order must be preserved, got %v", *populated.RoleIDs)
	}
}

func TestRoleRequestFieldNames(t *testing.T) {
	var payload RoleRequest
	err := json.Unmarshal([]byte(`{"role_name":"ops","description":"d","permissionIds":[7]}`), &payload)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.RoleName != "ops" || payload.Description != "d" {
		t.Errorf("unexpected fields: %+v", payload)
	}
	if len(payload.PermissionIDs) != 1 || payload.PermissionIDs[0] != 7 {
		t.Errorf("unexpected permission ids: %v", payload.PermissionIDs)
	}
}
