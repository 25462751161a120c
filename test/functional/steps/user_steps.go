package steps

import (
	"fmt"
	"net/http"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (fc *FeatureContext) aUserWithRole(name, role string) error {
	err := fc.keep(fc.apiDriver.CreateUser(fc.userID("admin"), name, fmt.Sprintf("%s@scouts.fr", name), "secret", role))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))

	var user User
	fc.require.NoError(fc.decodeBody(&user))
	fc.require.Equal(role, user.Role)
	fc.users[name] = user.ID
	return nil
}
