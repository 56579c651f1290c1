package e2etest

import (
	"github.com/myrjola/findmoney/internal/errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// plainHTTPJar keeps the session and CSRF cookies of a server reached over plain HTTP. The server always
// marks them Secure, which [cookiejar.Jar] would refuse to send back over http://. Cookies from https://
// servers keep the flag.
type plainHTTPJar struct {
	*cookiejar.Jar
}

func newPlainHTTPJar() (http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "new cookie jar")
	}
	return plainHTTPJar{Jar: jar}, nil
}

func (j plainHTTPJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if u.Scheme == "http" {
		for _, cookie := range cookies {
			cookie.Secure = false
		}
	}
	j.Jar.SetCookies(u, cookies)
}
