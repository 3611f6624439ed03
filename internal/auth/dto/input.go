package dto

import "errors"

type RegisterInput struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (in *RegisterInput) Validate() error {
	if in.Username == "" {
		return errors.New("username is required")
	}
	if in.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	if in.Username == "" {
		return errors.New("username is required")
	}
	if in.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
