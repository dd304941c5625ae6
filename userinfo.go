package weburl

// Userinfo wraps a parsed username and optional password, supplementing
// the core's (username, password) accessor pair with the struct-shaped
// view other consumers of a URL library expect (grounded on
// badu-http/url/userinfo.go's Userinfo shape).
type Userinfo struct {
	username    string
	password    string
	passwordSet bool
}

// User returns a Userinfo carrying only a username.
func User(username string) *Userinfo {
	return &Userinfo{username: username}
}

// UserPassword returns a Userinfo carrying both a username and password.
func UserPassword(username, password string) *Userinfo {
	return &Userinfo{username: username, password: password, passwordSet: true}
}

// Username returns the username, or "" if u is nil.
func (u *Userinfo) Username() string {
	if u == nil {
		return ""
	}
	return u.username
}

// Password returns the password and whether one was set.
func (u *Userinfo) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.password, u.passwordSet
}

// String returns "username[:password]" with both parts percent-encoded
// under the UserInfo encode set.
func (u *Userinfo) String() string {
	if u == nil {
		return ""
	}
	s := string(PercentEncode(nil, []byte(u.username), UserInfo))
	if u.passwordSet {
		s += ":" + string(PercentEncode(nil, []byte(u.password), UserInfo))
	}
	return s
}

// Userinfo returns the URL's userinfo as a Userinfo value, or nil when
// there is no username and no password.
func (u *URL) Userinfo() *Userinfo {
	username, hasUsername := u.Username()
	password, hasPassword := u.Password()
	if !hasUsername && !hasPassword {
		return nil
	}
	return &Userinfo{username: username, password: password, passwordSet: hasPassword}
}

// SetUserinfo replaces the URL's username and password in one step. A nil
// ui clears both.
func (u *URL) SetUserinfo(ui *Userinfo) (*URL, error) {
	if u.st.cannotHaveCredentialsOrPort() && ui != nil {
		return nil, errCannotHaveCredentialsOrPort
	}
	c := u.toComponents()
	if ui == nil {
		c.username = ""
		c.password = ""
		c.passwordSet = false
	} else {
		c.username = string(PercentEncode(nil, []byte(ui.username), UserInfo))
		if ui.passwordSet {
			c.password = string(PercentEncode(nil, []byte(ui.password), UserInfo))
			c.passwordSet = true
		} else {
			c.password = ""
			c.passwordSet = false
		}
	}
	return assembleURL(c), nil
}
