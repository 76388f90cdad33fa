package model

import "time"

// Store represents a listed store in the directory.  A store may
// optionally reference an owning user via OwnerID; the reference is
// weak — deleting nothing, enforcing nothing beyond the foreign key.
// This struct corresponds to a row in the `stores` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – store name shown in listings.
//  Email     – contact email of the store.
//  Address   – postal address, searchable alongside the name.
//  OwnerID   – optional user ID of the store owner (nil when unassigned).
//  CreatedAt – timestamp when the store was created.
//  UpdatedAt – timestamp of last update.
type Store struct {
    ID        uint64    // stores.id
    Name      string    // stores.name
    Email     string    // stores.email
    Address   string    // stores.address
    OwnerID   *uint64   // stores.owner_id (nullable)
    CreatedAt time.Time // stores.created_at
    UpdatedAt time.Time // stores.updated_at
}
