package common

// AuthorizationHeaderName is the HTTP header that carries the bearer access
// token on inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value inside the authorization header.
const BearerPrefix = "Bearer "
