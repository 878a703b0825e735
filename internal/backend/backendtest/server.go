// Package backendtest runs an in-memory imitation of the storefront REST API over httptest, so
// services can be tested through the real client.
package backendtest

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID     int64
	Name   string
	Active bool
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  int64
	Active      bool
}

type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

type CartLine struct {
	ID        int64
	ProductID int64
	Quantity  int
}

type OrderLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

type Order struct {
	ID     int64
	UserID int64
	Status string
	Lines  []OrderLine
}

type failure struct {
	method string
	prefix string
	status int
	body   string
}

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	categories map[int64]*Category
	products   map[int64]*Product
	users      map[int64]*User
	carts      map[int64][]CartLine
	orders     map[int64]*Order
	nextID     int64
	failures   []failure
	calls      []string

	// NoClearEndpoint makes DELETE /cart/user/{id} answer 405, like an API without a clear route.
	NoClearEndpoint bool
}

func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		categories: make(map[int64]*Category),
		products:   make(map[int64]*Product),
		users:      make(map[int64]*User),
		carts:      make(map[int64][]CartLine),
		orders:     make(map[int64]*Order),
		nextID:     1000,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", s.listProducts(false))
	mux.HandleFunc("GET /products/active", s.listProducts(true))
	mux.HandleFunc("GET /products/{id}", s.getProduct)
	mux.HandleFunc("GET /products/category/{id}", s.productsByCategory)
	mux.HandleFunc("GET /categories", s.listCategories(false))
	mux.HandleFunc("GET /categories/active", s.listCategories(true))
	mux.HandleFunc("GET /categories/{id}", s.getCategory)
	mux.HandleFunc("GET /users/{id}", s.getUser)
	mux.HandleFunc("GET /users/email/{email}", s.getUserByEmail)
	mux.HandleFunc("POST /users/login", s.login)
	mux.HandleFunc("POST /users/register", s.register)
	mux.HandleFunc("PUT /users/{id}", s.updateUser)
	mux.HandleFunc("GET /cart/user/{userId}", s.getCart)
	mux.HandleFunc("DELETE /cart/user/{userId}", s.clearCart)
	mux.HandleFunc("POST /cart/user/{userId}/items", s.addCartLine)
	mux.HandleFunc("DELETE /cart/user/{userId}/items/{lineId}", s.removeCartLine)
	mux.HandleFunc("GET /orders/{id}", s.getOrder)
	mux.HandleFunc("GET /orders/user/{userId}", s.ordersByUser)
	mux.HandleFunc("POST /orders", s.createOrder)
	mux.HandleFunc("PATCH /orders/{id}/estado", s.updateOrderStatus)

	s.Server = httptest.NewServer(s.intercept(mux))
	t.Cleanup(s.Close)

	return s
}

// Client returns a backend client pointed at the fake.
func (s *Server) Client() *backend.Client {
	c, err := backend.NewClient(s.URL, s.Server.Client())
	if err != nil {
		panic(err)
	}

	return c
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, r.Method+" "+r.URL.Path)

		for i, f := range s.failures {
			if f.method == r.Method && strings.HasPrefix(r.URL.Path, f.prefix) {
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				s.mu.Unlock()

				if f.body != "" {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(f.status)
					w.Write([]byte(f.body))

					return
				}

				http.Error(w, http.StatusText(f.status), f.status)

				return
			}
		}
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// FailNext makes the next request matching method and path prefix answer with status.
func (s *Server) FailNext(method, pathPrefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = append(s.failures, failure{method: method, prefix: pathPrefix, status: status})
}

// RespondNext makes the next matching request answer with a raw body.
func (s *Server) RespondNext(method, pathPrefix string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = append(s.failures, failure{method: method, prefix: pathPrefix, status: status, body: body})
}

// Calls lists "METHOD /path" for every request received, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = nil
}

func (s *Server) CountCalls(method, pathPrefix string) int {
	n := 0
	for _, c := range s.Calls() {
		if strings.HasPrefix(c, method+" "+pathPrefix) {
			n++
		}
	}

	return n
}

func (s *Server) AddCategory(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[c.ID] = &c
}

func (s *Server) AddProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = &p
}

func (s *Server) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.ID] = &u
}

func (s *Server) UserByEmail(email string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return *u, true
		}
	}

	return User{}, false
}

func (s *Server) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

// SetCart replaces a user's cart, assigning fresh line ids.
func (s *Server) SetCart(userID int64, lines ...CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range lines {
		if lines[i].ID == 0 {
			lines[i].ID = s.id()
		}
	}

	s.carts[userID] = lines
}

func (s *Server) CartLines(userID int64) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]CartLine(nil), s.carts[userID]...)
}

func (s *Server) AddOrder(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = &o
}

func (s *Server) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}

	return out
}

func (s *Server) id() int64 {
	s.nextID++

	return s.nextID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)

	return id, err == nil
}

func estado(active bool) string {
	if active {
		return "ACTIVO"
	}

	return "INACTIVO"
}

func (s *Server) productJSON(p *Product) map[string]any {
	out := map[string]any{
		"idProducto":    p.ID,
		"nombre":        p.Name,
		"descripcion":   p.Description,
		"precio":        p.Price,
		"stock":         p.Stock,
		"idCategoria":   p.CategoryID,
		"estado":        estado(p.Active),
		"fechaRegistro": "2024-05-01T10:00:00",
	}

	if c, ok := s.categories[p.CategoryID]; ok {
		out["nombreCategoria"] = c.Name
	}

	return out
}

func categoryJSON(c *Category) map[string]any {
	return map[string]any{"idCategoria": c.ID, "nombre": c.Name, "estado": estado(c.Active)}
}

func userJSON(u *User) map[string]any {
	return map[string]any{
		"idUsuario": u.ID,
		"nombre":    u.FirstName,
		"apellido":  u.LastName,
		"email":     u.Email,
		"telefono":  u.Phone,
		"direccion": u.Address,
		"estado":    "ACTIVO",
	}
}

func (s *Server) cartJSON(userID int64) map[string]any {
	lines := make([]map[string]any, 0, len(s.carts[userID]))

	for _, l := range s.carts[userID] {
		line := map[string]any{
			"idDetalle":  l.ID,
			"idProducto": l.ProductID,
			"cantidad":   l.Quantity,
		}

		if p, ok := s.products[l.ProductID]; ok {
			line["nombreProducto"] = p.Name
			line["precioUnitario"] = p.Price
		} else {
			line["nombreProducto"] = fmt.Sprintf("Producto %d", l.ProductID)
			line["precioUnitario"] = 0
		}

		lines = append(lines, line)
	}

	return map[string]any{"idCarrito": userID, "idUsuario": userID, "detalles": lines}
}

func (s *Server) orderJSON(o *Order) map[string]any {
	total := decimal.Zero
	lines := make([]map[string]any, 0, len(o.Lines))

	for _, l := range o.Lines {
		subtotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(subtotal)

		name := ""
		if p, ok := s.products[l.ProductID]; ok {
			name = p.Name
		}

		lines = append(lines, map[string]any{
			"idProducto":     l.ProductID,
			"nombreProducto": name,
			"cantidad":       l.Quantity,
			"precioUnitario": l.UnitPrice,
			"subtotal":       subtotal,
		})
	}

	userName := ""
	if u, ok := s.users[o.UserID]; ok {
		userName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}

	return map[string]any{
		"idOrden":       o.ID,
		"idUsuario":     o.UserID,
		"nombreUsuario": userName,
		"fechaOrden":    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"total":         total,
		"estado":        o.Status,
		"detalles":      lines,
	}
}

func (s *Server) listProducts(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		out := []map[string]any{}
		for _, id := range sortedKeys(s.products) {
			p := s.products[id]
			if activeOnly && !p.Active {
				continue
			}

			out = append(out, s.productJSON(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	p, ok := s.products[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, s.productJSON(p))
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	out := []map[string]any{}
	for _, pid := range sortedKeys(s.products) {
		if p := s.products[pid]; p.CategoryID == id {
			out = append(out, s.productJSON(p))
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listCategories(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		out := []map[string]any{}
		for _, id := range sortedKeys(s.categories) {
			c := s.categories[id]
			if activeOnly && !c.Active {
				continue
			}

			out = append(out, categoryJSON(c))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	c, ok := s.categories[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, categoryJSON(c))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	u, ok := s.users[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, userJSON(u))
}

func (s *Server) findByEmail(email string) *User {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}

	return nil
}

func (s *Server) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findByEmail(r.PathValue("email"))
	if u == nil {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, userJSON(u))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"contraseña"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findByEmail(body.Email)
	if u == nil || u.Password != body.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, userJSON(u))
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"nombre"`
		LastName  string `json:"apellido"`
		Email     string `json:"email"`
		Phone     string `json:"telefono"`
		Address   string `json:"direccion"`
		Password  string `json:"contraseña"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmail(body.Email) != nil {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}

	u := &User{
		ID:        s.id(),
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Address:   body.Address,
		Password:  body.Password,
	}
	s.users[u.ID] = u

	writeJSON(w, http.StatusCreated, userJSON(u))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"nombre"`
		LastName  string `json:"apellido"`
		Phone     string `json:"telefono"`
		Address   string `json:"direccion"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	u, ok := s.users[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if body.FirstName != "" {
		u.FirstName = body.FirstName
	}

	if body.LastName != "" {
		u.LastName = body.LastName
	}

	if body.Phone != "" {
		u.Phone = body.Phone
	}

	if body.Address != "" {
		u.Address = body.Address
	}

	writeJSON(w, http.StatusOK, userJSON(u))
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, _ := pathID(r, "userId")

	writeJSON(w, http.StatusOK, s.cartJSON(userID))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.NoClearEndpoint {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, _ := pathID(r, "userId")
	delete(s.carts, userID)

	writeJSON(w, http.StatusOK, s.cartJSON(userID))
}

func (s *Server) addCartLine(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int64 `json:"idProducto"`
		Quantity  int   `json:"cantidad"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity <= 0 {
		http.Error(w, "invalid item", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[body.ProductID]; !ok {
		http.NotFound(w, r)
		return
	}

	userID, _ := pathID(r, "userId")
	lines := s.carts[userID]

	merged := false
	for i := range lines {
		if lines[i].ProductID == body.ProductID {
			lines[i].Quantity += body.Quantity
			merged = true

			break
		}
	}

	if !merged {
		lines = append(lines, CartLine{ID: s.id(), ProductID: body.ProductID, Quantity: body.Quantity})
	}

	s.carts[userID] = lines

	writeJSON(w, http.StatusOK, s.cartJSON(userID))
}

func (s *Server) removeCartLine(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, _ := pathID(r, "userId")
	lineID, _ := pathID(r, "lineId")

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			s.carts[userID] = append(lines[:i:i], lines[i+1:]...)
			writeJSON(w, http.StatusOK, s.cartJSON(userID))

			return
		}
	}

	http.NotFound(w, r)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	o, ok := s.orders[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, s.orderJSON(o))
}

func (s *Server) ordersByUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, _ := pathID(r, "userId")

	out := []map[string]any{}
	for _, id := range sortedKeys(s.orders) {
		if o := s.orders[id]; o.UserID == userID {
			out = append(out, s.orderJSON(o))
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID int64 `json:"idUsuario"`
		Lines  []struct {
			ProductID int64 `json:"idProducto"`
			Quantity  int   `json:"cantidad"`
		} `json:"detalles"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Lines) == 0 {
		http.Error(w, "invalid order", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[body.UserID]; !ok {
		http.NotFound(w, r)
		return
	}

	o := &Order{ID: s.id(), UserID: body.UserID, Status: "PENDIENTE"}

	for _, l := range body.Lines {
		p, ok := s.products[l.ProductID]
		if !ok {
			http.Error(w, "unknown product", http.StatusBadRequest)
			return
		}

		o.Lines = append(o.Lines, OrderLine{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: p.Price})
	}

	s.orders[o.ID] = o

	writeJSON(w, http.StatusCreated, s.orderJSON(o))
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"estado"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := pathID(r, "id")

	o, ok := s.orders[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	o.Status = body.Status

	writeJSON(w, http.StatusOK, s.orderJSON(o))
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}
