package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lessonbox/src/core/domain"
)

// sampleDenominators stand in for typed input when the walkthrough is not interactive.
var sampleDenominators = []string{"4", "abc", "0"}

// Lessons returns the walkthrough in order. Steps inside a lesson may share
// state (a registered member, an opened account) through closure variables.
func (w *Walkthrough) Lessons() []Lesson {
	return []Lesson{
		w.divisionLesson(),
		w.inputLesson(),
		w.missingFileLesson(),
		w.noteLesson(),
		w.membersLesson(),
		w.accountLesson(),
		w.animalLesson(),
		w.bookLesson(),
		w.fleetLesson(),
		w.pizzaLesson(),
		w.catchAllLesson(),
	}
}

func (w *Walkthrough) divisionLesson() Lesson {
	return Lesson{
		Title: "Dividing by zero",
		Steps: []Step{{
			Name: "divide 10 by 0",
			Run: func(context.Context) (string, error) {
				result, err := w.svc.Calculator.Divide(10, 0)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("10 / 0 = %g", result), nil
			},
		}},
	}
}

func (w *Walkthrough) inputLesson() Lesson {
	divide := func(text string) (string, error) {
		result, err := w.svc.Calculator.DivideText(100, text)
		if err != nil {
			return fmt.Sprintf("input %q", text), err
		}
		return fmt.Sprintf("100 / %s = %g", text, result), nil
	}

	if w.in != nil {
		return Lesson{
			Title: "Turning typed text into a number",
			Steps: []Step{{
				Name: "divide 100 by typed number",
				Run: func(context.Context) (string, error) {
					text, err := w.readLine("Enter a number to divide 100 by: ")
					if err != nil {
						return "", err
					}
					return divide(text)
				},
			}},
		}
	}

	steps := make([]Step, len(sampleDenominators))
	for i, text := range sampleDenominators {
		text := text // per-iteration copy; go.mod targets go1.21 loop semantics
		steps[i] = Step{
			Name: fmt.Sprintf("divide 100 by %q", text),
			Run:  func(context.Context) (string, error) { return divide(text) },
		}
	}
	return Lesson{Title: "Turning typed text into a number", Steps: steps}
}

func (w *Walkthrough) missingFileLesson() Lesson {
	return Lesson{
		Title: "Reading a file that is not there",
		Steps: []Step{{
			Name: "read " + w.cfg.MissingPath,
			Run: func(context.Context) (string, error) {
				content, err := w.svc.Notes.Read(w.cfg.MissingPath)
				if err != nil {
					return "", err
				}
				return content, nil
			},
		}},
	}
}

func (w *Walkthrough) noteLesson() Lesson {
	return Lesson{
		Title: "Writing a file and always closing it",
		Steps: []Step{
			{
				Name: "write " + w.cfg.NotePath,
				Run: func(context.Context) (string, error) {
					if err := w.svc.Notes.Write(w.cfg.NotePath); err != nil {
						return "", err
					}
					return fmt.Sprintf("wrote %q to %s, file closed", domain.NoteContent, w.cfg.NotePath), nil
				},
			},
			{
				Name: "read " + w.cfg.NotePath + " back",
				Run: func(context.Context) (string, error) {
					content, err := w.svc.Notes.Read(w.cfg.NotePath)
					if err != nil {
						return "", err
					}
					return "read back: " + content, nil
				},
			},
		},
	}
}

func (w *Walkthrough) membersLesson() Lesson {
	var memberID uuid.UUID
	register := func(name string) Step {
		return Step{
			Name: fmt.Sprintf("register %q", name),
			Run: func(ctx context.Context) (string, error) {
				m, err := w.svc.Members.Register(ctx, name)
				if err != nil {
					// A persistent store may already hold the name from an earlier run.
					if domain.IsConflict(err) && memberID == uuid.Nil {
						if existing, ferr := w.svc.Members.FindByUsername(ctx, name); ferr == nil {
							memberID = existing.ID
						}
					}
					return "", err
				}
				if memberID == uuid.Nil {
					memberID = m.ID
				}
				return fmt.Sprintf("user %q registered", m.Username), nil
			},
		}
	}
	setAge := func(value any) Step {
		return Step{
			Name: fmt.Sprintf("set age %#v", value),
			Run: func(ctx context.Context) (string, error) {
				if memberID == uuid.Nil {
					return "", domain.NewNotFoundError("no member registered")
				}
				m, err := w.svc.Members.SetAge(ctx, memberID, value)
				if err != nil {
					return "", err
				}
				age, _ := m.Age()
				return fmt.Sprintf("age set to %d", age), nil
			},
		}
	}
	return Lesson{
		Title: "Validating registrations and ages",
		Steps: []Step{
			register("Al"),
			register("Ana"),
			register("Ana"),
			setAge(25),
			setAge(-5),
			setAge("abc"),
			setAge(25.5),
			{
				Name: "read age back",
				Run: func(ctx context.Context) (string, error) {
					m, err := w.svc.Members.Get(ctx, memberID)
					if err != nil {
						return "", err
					}
					age, ok := m.Age()
					if !ok {
						return fmt.Sprintf("%s has no age yet", m.Username), nil
					}
					return fmt.Sprintf("%s is still %d after the rejected updates", m.Username, age), nil
				},
			},
		},
	}
}

func (w *Walkthrough) accountLesson() Lesson {
	var accountID uuid.UUID
	balance := func(ctx context.Context) (string, error) {
		b, err := w.svc.Accounts.Balance(ctx, accountID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("balance: %d", b), nil
	}
	move := func(name string, amount int64, op func(context.Context, uuid.UUID, int64) (*domain.Account, error)) Step {
		return Step{
			Name: fmt.Sprintf("%s %d", name, amount),
			Run: func(ctx context.Context) (string, error) {
				acc, err := op(ctx, accountID, amount)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s of %d accepted, balance now %d", name, amount, acc.Balance()), nil
			},
		}
	}
	return Lesson{
		Title: "Keeping a balance behind its methods",
		Steps: []Step{
			{
				Name: "open account for Alice with 1000",
				Run: func(ctx context.Context) (string, error) {
					acc, err := w.svc.Accounts.Open(ctx, "Alice", 1000)
					if err != nil {
						return "", err
					}
					accountID = acc.ID()
					return fmt.Sprintf("opened for %s at %s", acc.Owner(), acc.CreatedAt().Format("2006-01-02 15:04:05")), nil
				},
			},
			{Name: "get balance", Run: balance},
			move("deposit", 500, w.svc.Accounts.Deposit),
			move("deposit", 0, w.svc.Accounts.Deposit),
			move("withdraw", 2000, w.svc.Accounts.Withdraw),
			{Name: "get balance", Run: balance},
		},
	}
}

func (w *Walkthrough) animalLesson() Lesson {
	dog := domain.NewDog("Fido", 2)
	cat := domain.NewCat("Milo")
	golden := domain.NewGoldenRetriever("Buddy", "tennis ball")

	return Lesson{
		Title: "One request, many animals",
		Steps: []Step{
			{
				Name: "chorus",
				Run: func(context.Context) (string, error) {
					var b strings.Builder
					var errs []error
					for _, u := range w.svc.Animals.Chorus([]domain.Speaker{dog, cat, golden}) {
						if u.Err != nil {
							errs = append(errs, u.Err)
							continue
						}
						b.WriteString(u.Sound + "\n")
					}
					return b.String(), errors.Join(errs...)
				},
			},
			{
				Name: "fetch",
				Run:  func(context.Context) (string, error) { return golden.Fetch(), nil },
			},
			{
				Name: "birthday",
				Run: func(context.Context) (string, error) {
					return dog.CelebrateBirthday() + fmt.Sprintf("\n%s is now %d", dog.Name(), dog.Age()), nil
				},
			},
			{
				Name: "animal without a sound",
				Run: func(context.Context) (string, error) {
					return domain.MakeSpeak(domain.NewAnimal("Generic"))
				},
			},
		},
	}
}

func (w *Walkthrough) bookLesson() Lesson {
	book := domain.Book{Title: "Go for Beginners", Author: "Zhang San", Pages: 300}
	return Lesson{
		Title: "Making a value print itself",
		Steps: []Step{{
			Name: "describe book",
			Run: func(context.Context) (string, error) {
				return fmt.Sprintf("%v\n%#v\n%d pages", book, book, book.Len()), nil
			},
		}},
	}
}

func (w *Walkthrough) fleetLesson() Lesson {
	fleet := domain.NewFleetConfig()
	toyota := fleet.NewCar("Toyota")
	honda := fleet.NewCar("Honda")
	show := func() string { return toyota.String() + "\n" + honda.String() }

	return Lesson{
		Title: "Shared settings with one owner",
		Steps: []Step{
			{Name: "show cars", Run: func(context.Context) (string, error) { return show(), nil }},
			{
				Name: "set fleet wheels to 3",
				Run: func(context.Context) (string, error) {
					if err := fleet.SetWheels(3); err != nil {
						return "", err
					}
					return show(), nil
				},
			},
			{
				Name: "set fleet wheels to 0",
				Run: func(context.Context) (string, error) {
					if err := fleet.SetWheels(0); err != nil {
						return "", err
					}
					return show(), nil
				},
			},
		},
	}
}

func (w *Walkthrough) pizzaLesson() Lesson {
	return Lesson{
		Title: "Factories and plain helpers",
		Steps: []Step{{
			Name: "pizzas",
			Run: func(context.Context) (string, error) {
				custom := domain.Pizza{Ingredients: []string{"cheese", "ham"}}
				classic := domain.Margherita()
				return fmt.Sprintf("%v vegetarian=%t\n%v vegetarian=%t\n[cheese mushrooms] vegetarian=%t",
					custom.Ingredients, custom.IsVegetarian(),
					classic.Ingredients, classic.IsVegetarian(),
					domain.IsVegetarian([]string{"cheese", "mushrooms"}),
				), nil
			},
		}},
	}
}

func (w *Walkthrough) catchAllLesson() Lesson {
	return Lesson{
		Title: "Failures nobody planned for",
		Steps: []Step{{
			Name: "unexpected failure",
			Run: func(context.Context) (string, error) {
				return "", errors.New("something nobody anticipated went wrong")
			},
		}},
	}
}
