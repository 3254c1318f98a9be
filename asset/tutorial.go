package asset

// TutorialText is shown on the how-to-play screen
const TutorialText = `[yellow::b]How to play[-::-]

Move the mouse to steer. Your character follows the pointer.

Things fall from the sky. Anything that glows [red]red[-] hurts.
You have three hearts. Lose them all and the run is over.

Hold the [::b]left button[::-] to hide. Hidden, nothing can touch you
and nothing pulls you, but hiding burns energy fast.
Energy comes back slowly while you are out in the open.

Catch the [green]energy bars[-] to refill.

Black holes and planets pull you in. Homing sweets chase you
and leave a burning trail. Cross the invisible line near the top
of the screen and a plane comes through from the side.

After a hit you are hidden for a moment to get your bearings.

The longer you survive, the faster it gets and the more you score.`
