package model

import "time"

// Rating models an entry in the `ratings` table.  Each row records one
// user's current rating of one store; the (UserID, StoreID) pair is
// unique, so resubmitting overwrites the value in place rather than
// appending history.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – the rating user.
//  StoreID   – the rated store.
//  Value     – integer rating in [1,5].
//  CreatedAt – when the first submission happened.
//  UpdatedAt – advanced on every resubmission.
type Rating struct {
    ID        uint64    // ratings.id
    UserID    uint64    // ratings.user_id
    StoreID   uint64    // ratings.store_id
    Value     uint8     // ratings.rating
    CreatedAt time.Time // ratings.created_at
    UpdatedAt time.Time // ratings.updated_at
}
