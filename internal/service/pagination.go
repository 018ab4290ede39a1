package service

import "github.com/jnvillamor/blogsite/pkg/constant"

// clampPage normalizes caller-supplied pagination values.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
