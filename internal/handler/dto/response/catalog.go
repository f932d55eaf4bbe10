package response

import (
	"salon-scheduler/internal/usecase/queries"
)

func FromClientList(views []queries.ClientView) []ClientResponse {
	res := make([]ClientResponse, len(views))
	for i, v := range views {
		res[i] = FromClientView(v)
	}
	return res
}

func FromServiceList(views []queries.ServiceView) []ServiceResponse {
	res := make([]ServiceResponse, len(views))
	for i, v := range views {
		res[i] = FromServiceView(v)
	}
	return res
}
