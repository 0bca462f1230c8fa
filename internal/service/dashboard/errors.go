package dashboard

import "errors"

var ErrCompanyRequired = errors.New("company name is required")
