package everyaction

//
// The Phones service: phone metadata lookups.
//

import (
	"context"
	"net/http"
)

// PhonesService holds the operations on phone metadata. Use it
// through [Client.Phones].
type PhonesService struct {
	client *Client
}

var phonesIsCellStatusesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Phones.IsCellStatuses",
	Method:     http.MethodGet,
	Path:       "phones/isCellStatuses",
	Paginated:  true,
	ResultKind: IsCellStatus,
})

// IsCellStatuses lists the possible is-a-cell-phone statuses.
func (s *PhonesService) IsCellStatuses(ctx context.Context, args Args) ([]*Object, error) {
	return callList(ctx, s.client, phonesIsCellStatusesEndpoint, nil, args, nil)
}
