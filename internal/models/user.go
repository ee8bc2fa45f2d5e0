package models

// User is a customer account stored in the "user" collection
type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address" bson:"address"`
	Age      *int   `json:"age" bson:"age"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

// UserInput is the payload accepted for a User
type UserInput struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Address  *string `json:"address" validate:"required"`
	Age      *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool   `json:"is_active" nullable:"false"`
}

func (in UserInput) Validate() (User, error) {
	if err := validateStruct(in); err != nil {
		return User{}, err
	}
	return User{
		Name:     *in.Name,
		Email:    *in.Email,
		Address:  *in.Address,
		Age:      in.Age,
		IsActive: valueOr(in.IsActive, true),
	}, nil
}
