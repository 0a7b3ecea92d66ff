package account

import (
	"context"
	"strconv"

	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/ledger"
	"github.com/amirasaad/atm/pkg/repository"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	"github.com/amirasaad/atm/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for account operations. There are no session
// tokens: every request names the account in the path and carries its PIN.
//
// Routes:
//   - POST /accounts              : Register a new account.
//   - POST /accounts/:id/balance  : Report the balance.
//   - POST /accounts/:id/deposit  : Deposit funds.
//   - POST /accounts/:id/withdraw : Withdraw funds.
//   - PUT  /accounts/:id/pin      : Set or change the PIN.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/accounts", Register(svc))
	app.Post("/accounts/:id/balance", Balance(svc))
	app.Post("/accounts/:id/deposit", Deposit(svc))
	app.Post("/accounts/:id/withdraw", Withdraw(svc))
	app.Put("/accounts/:id/pin", ChangePIN(svc))
}

// Register returns a handler that creates an account.
// @Summary Register an account
// @Description Creates an account with an initial balance and an optional 4-digit PIN. An empty PIN registers the account without one.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} common.Response "User registered successfully!"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "User ID already exists"
// @Failure 422 {object} common.ProblemDetails "Rejected"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [post]
func Register(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Registering account %d", input.ID)
		out, err := svc.Register(c.UserContext(), input.ID, input.InitialBalance, input.PIN)
		if err != nil {
			log.Errorf("Failed to register account %d: %v", input.ID, err)
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to register account", err.Error())
		}
		if out.Rejected() {
			return common.RejectionJSON(c, out)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, out.Message, fiber.Map{"id": input.ID})
	}
}

// Balance returns a handler that reports the balance of an authenticated account.
// @Summary Check balance
// @Description Validates the PIN and returns the current balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body PINRequest true "Account PIN"
// @Success 200 {object} common.Response{data=AccountDTO} "Your current balance is: $100.00"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Invalid PIN"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/balance [post]
func Balance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		input, err := common.BindAndValidate[PINRequest](c)
		if input == nil {
			return err // error response already written
		}
		l, ok, err := login(c, svc, id, input.PIN)
		if !ok {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, l.CheckBalance(), ToAccountDTO(l))
	}
}

// Deposit returns a handler that deposits into an authenticated account.
// @Summary Deposit funds
// @Description Validates the PIN and adds a positive amount with at most two decimals to the balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AmountRequest true "PIN and amount"
// @Success 200 {object} common.Response{data=AccountDTO} "Deposit accepted"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Invalid PIN"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Rejected"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/deposit [post]
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return transact(svc, "deposit", (*ledger.Ledger).Deposit)
}

// Withdraw returns a handler that withdraws from an authenticated account.
// @Summary Withdraw funds
// @Description Validates the PIN and removes a positive amount, no larger than the balance, from the balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AmountRequest true "PIN and amount"
// @Success 200 {object} common.Response{data=AccountDTO} "Withdrawal accepted"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Invalid PIN"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds or invalid amount"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/withdraw [post]
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return transact(svc, "withdraw", (*ledger.Ledger).Withdraw)
}

func transact(
	svc *accountsvc.Service,
	op string,
	fn func(*ledger.Ledger, context.Context, decimal.Decimal) (ledger.Outcome, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err // error response already written
		}
		l, ok, err := login(c, svc, id, input.PIN)
		if !ok {
			return err
		}
		log.Infof("%s handler: account %d, amount %s", op, id, input.Amount)
		out, err := fn(l, c.UserContext(), input.Amount)
		if err != nil {
			log.Errorf("Failed to %s: %v", op, err)
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to "+op, err.Error())
		}
		if out.Rejected() {
			return common.RejectionJSON(c, out)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, out.Message, ToAccountDTO(l))
	}
}

// ChangePIN returns a handler that sets or replaces an account's PIN. The
// current PIN is required once one has been set. While the account has no
// PIN, the first one can be set without any credential.
// @Summary Set or change the PIN
// @Description Replaces the PIN after validating the current one. An account without a PIN accepts its first PIN unauthenticated.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body ChangePINRequest true "Current and new PIN"
// @Success 200 {object} common.Response{data=AccountDTO} "Your PIN has been set/updated successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Invalid PIN"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Invalid PIN format"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/pin [put]
func ChangePIN(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		input, err := common.BindAndValidate[ChangePINRequest](c)
		if input == nil {
			return err // error response already written
		}
		l, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return openFailed(c, id, err)
		}
		if !l.Exists() {
			return common.RejectionJSON(c, ledger.Reject(repository.ErrNotFound))
		}
		if l.HasPIN() {
			if out := l.ValidatePIN(input.PIN); out.Rejected() {
				return common.RejectionJSON(c, out)
			}
		}
		out, err := l.SetPIN(c.UserContext(), input.NewPIN)
		if err != nil {
			log.Errorf("Failed to set PIN for account %d: %v", id, err)
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to set PIN", err.Error())
		}
		if out.Rejected() {
			return common.RejectionJSON(c, out)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, out.Message, ToAccountDTO(l))
	}
}

// login authenticates id with pin. When ok is false the response has been
// written and err is what the handler should return.
func login(c *fiber.Ctx, svc *accountsvc.Service, id int64, pin string) (*ledger.Ledger, bool, error) {
	l, out, err := svc.Login(c.UserContext(), id, pin)
	if err != nil {
		return nil, false, openFailed(c, id, err)
	}
	if out.Rejected() {
		return nil, false, common.RejectionJSON(c, out)
	}
	return l, true, nil
}

func openFailed(c *fiber.Ctx, id int64, err error) error {
	if ledger.IsRejection(err) {
		return common.RejectionJSON(c, ledger.Reject(err))
	}
	log.Errorf("Failed to open account %d: %v", id, err)
	return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to open account", err.Error())
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	log.Errorf("Invalid account ID %q", c.Params("id"))
	return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", ledger.RejectionMessage(account.ErrInvalidID))
}
