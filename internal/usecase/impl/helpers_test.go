package impl

import (
	"io"
	"log/slog"

	"workgroup/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func adminOf(userID, groupID int64) entity.Principal {
	return entity.Principal{UserID: userID, Username: "admin", Role: entity.RoleAdmin, WorkingGroupID: ptr(groupID)}
}

func memberOf(userID, groupID int64) entity.Principal {
	return entity.Principal{UserID: userID, Username: "member", Role: entity.RoleMember, WorkingGroupID: ptr(groupID)}
}
