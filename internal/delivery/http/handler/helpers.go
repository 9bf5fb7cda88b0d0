package handler

import (
	"strconv"
	"strings"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func requireActor(c fiber.Ctx) (user.Actor, error) {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return user.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return actor, nil
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

// queryList collects every occurrence of key (checkbox style, repeated
// params) and splits comma-separated values within each occurrence.
func queryList(c fiber.Ctx, key string) []string {
	raw := c.RequestCtx().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, b := range raw {
		for _, part := range strings.Split(string(b), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// queryInt64 returns nil when key is absent or blank.
func queryInt64(c fiber.Ctx, key string) (*int64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return &v, nil
}

// queryUUID returns nil when key is absent or blank.
func queryUUID(c fiber.Ctx, key string) (*uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return &id, nil
}
