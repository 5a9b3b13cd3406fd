package entity

import "time"

// LikeableKind tags the type of entity a like points at.
type LikeableKind string

const KindBlog LikeableKind = "blog"

// LikeTarget is the polymorphic like target: a kind tag plus the target id.
type LikeTarget struct {
	Kind LikeableKind
	ID   uint
}

type Like struct {
	ID        uint
	UserID    uint
	Target    LikeTarget
	CreatedAt time.Time
}

type LikeResult struct {
	Liked      bool
	LikesCount int64
}
