// Package dto defines data transfer objects for the userdata feature's HTTP transport layer.
package dto

import (
	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/userdata/usecase"
)

// UserDoc is one user document as accepted by the insert and replace
// endpoints and returned by the query endpoints. Password hashes never
// travel through this surface.
type UserDoc struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"required"`
}

// ToEntity converts the document into a domain user.
func (d UserDoc) ToEntity() *entity.User {
	return &entity.User{Name: d.Name, Email: d.Email, Age: d.Age}
}

// UserDocFromEntity projects a domain user onto the public document shape.
func UserDocFromEntity(u entity.User) UserDoc {
	return UserDoc{ID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age}
}

// FilterDoc selects users for bulk operations and queries.
type FilterDoc struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

// ToFilter converts the document into a usecase filter.
func (d FilterDoc) ToFilter() usecase.Filter {
	return usecase.Filter{Name: d.Name, Email: d.Email, Age: d.Age}
}

// FieldsDoc carries the updatable columns; absent fields stay untouched.
type FieldsDoc struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// ToFields converts the document into usecase update fields.
func (d FieldsDoc) ToFields() usecase.Fields {
	return usecase.Fields{Name: d.Name, Email: d.Email, Age: d.Age}
}

// UpdateOneReq is the body for PUT /userdata/updateOne/:id.
type UpdateOneReq struct {
	FieldsDoc
}

// UpdateManyReq is the body for PUT /userdata/updateMany.
type UpdateManyReq struct {
	Filter     FilterDoc `json:"filter"`
	UpdateData FieldsDoc `json:"updateData"`
}

// DeleteManyReq is the body for DELETE /userdata/deleteMany.
type DeleteManyReq struct {
	Filter FilterDoc `json:"filter"`
}
