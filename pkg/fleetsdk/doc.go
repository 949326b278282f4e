/*
Package fleetsdk is a Go client for the MyVehicles API and holds the wire
types shared by the server and its callers.

A Client covers every public endpoint:

	client := fleetsdk.NewClient("http://localhost:4000")

	res, err := client.CreateUser(ctx, fleetsdk.UserRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "Segr3d@",
	})

	vehicles, err := client.SearchVehicles(ctx, "transportes")

Login returns a Session carrying the access token. Refresh trades the
current token for a new one before it expires:

	session, err := client.Login(ctx, "ana@example.com", "Segr3d@")
	if err != nil {
		var apiErr *fleetsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
			// wrong password
		}
	}
	err = session.Refresh(ctx)

Non-2xx responses are returned as *APIError with the decoded error envelope.
*/
package fleetsdk
