// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/unclebandit/customer-viewer/internal/model"
	"github.com/unclebandit/customer-viewer/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

// ListCustomers serves GET /api/customers?filterName=&filterLocation=.
//
// A store failure is logged and the connection is dropped without a
// response; clients are expected to time out on their own.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	filter := model.CustomerFilter{
		Name:     r.URL.Query().Get("filterName"),
		Location: r.URL.Query().Get("filterLocation"),
	}
	log.Printf("filterName: %q filterLocation: %q\n", filter.Name, filter.Location)

	customers, err := c.CustomerService.ListCustomers(r.Context(), filter)
	if err != nil {
		log.Println("❌ Error fetching customers:", err)
		panic(http.ErrAbortHandler)
	}

	log.Println("Customers matched:", len(customers))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(customers); err != nil {
		log.Println("⚠️ Failed to write customers response:", err)
	}
}
