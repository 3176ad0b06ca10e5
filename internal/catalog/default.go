// Package catalog holds the built-in question set used when no custom set is
// selected.
package catalog

import (
	"math/rand"

	"github.com/google/uuid"

	"jeopardy-board-service/internal/domain"
)

type item struct {
	question string
	answer   string
	value    int
}

func newCategory(name string, items []item) domain.Category {
	category := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Questions: make([]domain.Question, 0, len(items)),
	}
	for _, it := range items {
		category.Questions = append(category.Questions, domain.Question{
			ID:       uuid.NewString(),
			Category: name,
			Question: it.question,
			Answer:   it.answer,
			Value:    it.value,
		})
	}
	return category
}

// Default generates the built-in board with fresh identifiers and daily
// doubles assigned from rnd (one in round 1, two in round 2).
func Default(rnd *rand.Rand) domain.GameQuestions {
	round1 := []domain.Category{
		newCategory("Revolutionary War", []item{
			{"This general led the Continental Army to victory and became our first president", "Who is George Washington?", 200},
			{"This 1776 pamphlet by Thomas Paine inspired many to join the Revolutionary cause", "What is Common Sense?", 400},
			{"This 1775 battle near Boston featured the famous order 'Don't fire until you see the whites of their eyes'", "What is the Battle of Bunker Hill?", 600},
			{"This French Marquis became a major general in the Continental Army at age 19", "Who is Marquis de Lafayette?", 800},
			{"This 1781 battle was the last major land battle of the Revolutionary War", "What is the Battle of Yorktown?", 1000},
		}),
		newCategory("Civil War", []item{
			{"This Confederate general surrendered to Ulysses S. Grant at Appomattox Court House", "Who is Robert E. Lee?", 200},
			{"This 1863 battle is often considered the turning point of the Civil War", "What is the Battle of Gettysburg?", 400},
			{"This president issued the Emancipation Proclamation on January 1, 1863", "Who is Abraham Lincoln?", 600},
			{"This Union general's 'March to the Sea' cut through Georgia", "Who is William Tecumseh Sherman?", 800},
			{"This Confederate ironclad battled the USS Monitor in 1862", "What is the CSS Virginia (or Merrimack)?", 1000},
		}),
		newCategory("World War I", []item{
			{"This 1917 telegram helped bring the US into WWI", "What is the Zimmermann Telegram?", 200},
			{"This US General led the American Expeditionary Forces", "Who is John J. Pershing?", 400},
			{"These American soldiers were nicknamed 'Doughboys'", "Who are WWI Infantry?", 600},
			{"This famous WWI ace was known as the 'Red Baron'", "Who is Manfred von Richthofen?", 800},
			{"This 1918 battle was the largest American military operation in WWI", "What is the Meuse-Argonne Offensive?", 1000},
		}),
		newCategory("World War II", []item{
			{"This December 7, 1941 attack brought the US into WWII", "What is Pearl Harbor?", 200},
			{"This general promised 'I shall return' to the Philippines", "Who is Douglas MacArthur?", 400},
			{"This June 6, 1944 invasion was code-named Operation Overlord", "What is D-Day?", 600},
			{"These women factory workers were represented by 'Rosie the Riveter'", "Who are Women War Workers?", 800},
			{"This secret US program developed the atomic bomb", "What is the Manhattan Project?", 1000},
		}),
		newCategory("Military Tech", []item{
			{"This rifle was the standard US service weapon in WWII", "What is the M1 Garand?", 200},
			{"This WWII computer helped break the German Enigma code", "What is the Bombe?", 400},
			{"This vehicle was nicknamed the 'Jeep' in WWII", "What is the Willys MB?", 600},
			{"This aircraft dropped the atomic bombs on Japan", "What is the B-29 Superfortress?", 800},
			{"This radar technology helped Britain win the Battle of Britain", "What is Chain Home?", 1000},
		}),
		newCategory("Military Leaders", []item{
			{"This WWII general was known as 'Old Blood and Guts'", "Who is George S. Patton?", 200},
			{"This admiral's flagship at Pearl Harbor was the USS Arizona", "Who is Admiral Isaac Kidd?", 400},
			{"This Civil War general became the first 4-star general in US history", "Who is Ulysses S. Grant?", 600},
			{"This WWI ace was America's most successful fighter pilot", "Who is Eddie Rickenbacker?", 800},
			{"This admiral was nicknamed 'Bull' and led the Pacific Fleet in WWII", "Who is Admiral William 'Bull' Halsey?", 1000},
		}),
	}

	round2 := []domain.Category{
		newCategory("Modern Warfare", []item{
			{"This 1991 operation liberated Kuwait", "What is Operation Desert Storm?", 400},
			{"This special operations force killed Osama bin Laden in 2011", "Who is SEAL Team Six?", 800},
			{"This aircraft carrier was first deployed in 1975 and is named after a WWII battle", "What is the USS Nimitz?", 1200},
			{"This stealth aircraft was first used in combat during Operation Desert Storm", "What is the F-117 Nighthawk?", 1600},
			{"This military computer network became the foundation of the internet", "What is ARPANET?", 2000},
		}),
		newCategory("Military Branches", []item{
			{"This is the oldest active branch of the US military", "What is the Army?", 400},
			{"This military branch was established in 1947", "What is the Air Force?", 800},
			{"This elite military force's motto is 'Semper Fidelis'", "What are the Marines?", 1200},
			{"This branch operates the Sea, Air, and Land Teams", "What is the Navy?", 1600},
			{"This newest military branch was established in 2019", "What is the Space Force?", 2000},
		}),
		newCategory("Military Operations", []item{
			{"This 1944 operation was the largest airborne operation in history", "What is Operation Market Garden?", 400},
			{"This 1983 operation invaded Grenada", "What is Operation Urgent Fury?", 800},
			{"This 1989 operation removed Manuel Noriega from power", "What is Operation Just Cause?", 1200},
			{"This 2003 operation began the Iraq War", "What is Operation Iraqi Freedom?", 1600},
			{"This operation killed ISIS leader Abu Bakr al-Baghdadi", "What is Operation Kayla Mueller?", 2000},
		}),
		newCategory("Military Awards", []item{
			{"This is the highest military decoration in the United States", "What is the Medal of Honor?", 400},
			{"This purple decoration is awarded for wounds received in combat", "What is the Purple Heart?", 800},
			{"This cross was first awarded during WWI for extraordinary heroism", "What is the Distinguished Service Cross?", 1200},
			{"This medal is awarded for distinguishing oneself by heroism not involving combat", "What is the Soldier's Medal?", 1600},
			{"This star is awarded for gallantry in action against an enemy", "What is the Silver Star?", 2000},
		}),
		newCategory("Military Traditions", []item{
			{"This bugle call signals the end of the day", "What is Taps?", 400},
			{"This ceremony honors fallen service members with three rifle volleys", "What is the 21-gun salute?", 800},
			{"This annual game between Army and Navy began in 1890", "What is the Army-Navy Game?", 1200},
			{"This sword is part of the Marine Corps officer uniform", "What is the Mameluke Sword?", 1600},
			{"This ceremony marks the changing of guard at the Tomb of the Unknown Soldier", "What is the Changing of the Guard?", 2000},
		}),
		newCategory("Military Bases", []item{
			{"This Virginia base is the world's largest naval station", "What is Naval Station Norfolk?", 400},
			{"This Texas base is the largest military installation in the world", "What is Fort Hood?", 800},
			{"This Colorado base houses NORAD", "What is Cheyenne Mountain?", 1200},
			{"This Nevada base is known for testing experimental aircraft", "What is Area 51?", 1600},
			{"This Hawaii base was established in 1908 and is still active today", "What is Pearl Harbor?", 2000},
		}),
	}

	domain.AssignDailyDoubles(rnd, round1, domain.DoublesRound1)
	domain.AssignDailyDoubles(rnd, round2, domain.DoublesRound2)

	return domain.GameQuestions{Round1: round1, Round2: round2}
}
